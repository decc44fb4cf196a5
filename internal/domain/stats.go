package domain

type Counters struct {
	Normal int64 `json:"normal"`
	Urgent int64 `json:"urgent"`
}

func (c Counters) Total() int64 {
	return c.Normal + c.Urgent
}

func (c *Counters) Add(p Priority) {
	if p.IsUrgent() {
		c.Urgent++
		return
	}
	c.Normal++
}

type QueueStats struct {
	Submitted Counters `json:"submitted"`
	Served    Counters `json:"served"`
}
