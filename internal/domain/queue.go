package domain

type TurnQueue interface {
	Submit(name, procedure, priority string) (Turn, error)
	ListPending() []Turn
	ServeNext() (Turn, bool, []Turn)
	Len() int
}
