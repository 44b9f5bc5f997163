package handler

type ContextKey string

var (
	YearCtx ContextKey = "year"
)
