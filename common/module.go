package common

type Module string

const (
	ModuleSLP Module = "slp"
)

func (m Module) String() string {
	return string(m)
}
