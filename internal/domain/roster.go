package domain

import "time"

type RosterType string

const (
	RosterInternational RosterType = "international"
	RosterDomestic      RosterType = "domestic"
)

type Crew string

const (
	CrewA Crew = "A"
	CrewB Crew = "B"
	CrewC Crew = "C"
	CrewD Crew = "D"
)

type ShiftSlot string

const (
	SlotMorning ShiftSlot = "M"
	SlotEvening ShiftSlot = "E"
	SlotNight   ShiftSlot = "N"
	SlotOff     ShiftSlot = "O"
)

// DateCell 是国际排班表中某一行在某个月份落到的日期
type DateCell struct {
	Text     string `json:"text"`     // 例如 "31 Wed-25"
	FullDate string `json:"fullDate"` // YYYY-MM-DD
	Day      int    `json:"day"`
}

// BackboneRow 是国际排班表 32 行骨架中的一行，Months 的键为 1~12
type BackboneRow struct {
	Index        int               `json:"index"`
	Morning      Crew              `json:"M"`
	Evening      Crew              `json:"E"`
	Night        Crew              `json:"N"`
	Off          Crew              `json:"O"`
	Months       map[int]*DateCell `json:"months"`
	IsActiveDuty bool              `json:"isActiveDuty"`
}

// SlotOf 返回某个班组在这一行中所处的班次，班组不存在时返回空字符串
func (r *BackboneRow) SlotOf(crew Crew) ShiftSlot {
	switch crew {
	case r.Morning:
		return SlotMorning
	case r.Evening:
		return SlotEvening
	case r.Night:
		return SlotNight
	case r.Off:
		return SlotOff
	}
	return ""
}

type DomesticCell struct {
	Date     time.Time `json:"date"`
	FullDate string    `json:"fullDate"`
	DayName  string    `json:"dayName"`
	Morning  Crew      `json:"M"`
	Evening  Crew      `json:"E"`
}

// DomesticRow 对应每月的第 DayNum 天，某个月没有这一天时对应的值为 nil
type DomesticRow struct {
	DayNum int                   `json:"dayNum"`
	Months map[int]*DomesticCell `json:"months"`
}

type InternationalDuty struct {
	Date     string `json:"date"`
	RowIndex int    `json:"rowIndex"`
	Morning  Crew   `json:"M"`
	Evening  Crew   `json:"E"`
	Night    Crew   `json:"N"`
	Off      Crew   `json:"O"`
}

type DomesticDuty struct {
	Date    string `json:"date"`
	DayName string `json:"dayName"`
	Morning Crew   `json:"M"`
	Evening Crew   `json:"E"`
}

type DutySummary struct {
	International InternationalDuty `json:"international"`
	Domestic      DomesticDuty      `json:"domestic"`
}
