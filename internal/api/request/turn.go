package request

// SubmitTurnRequest takes priority as any JSON value. Only the string
// "urgent" means urgent, numbers, booleans and null all end up normal.
type SubmitTurnRequest struct {
	Name      string `json:"name"`
	Procedure string `json:"procedure"`
	Priority  any    `json:"priority"`
}

func (r SubmitTurnRequest) PriorityValue() string {
	s, _ := r.Priority.(string)
	return s
}
