package factory

import "fmt"

// Kind is the type tag of an equipment variant
type Kind string

const (
	KindNotebook Kind = "Notebook"
	KindDesktop  Kind = "Desktop"
	KindServer   Kind = "Server"
)

// Variant is what the factory produces
type Variant interface {
	// Kind returns the variant's canonical label
	Kind() Kind
	// Describe returns "Type: <Kind>, Name: <name>, RAM: <ram>, Processor: <processor>"
	Describe() string
}

func describe(kind Kind, name, ram, processor string) string {
	return fmt.Sprintf("Type: %s, Name: %s, RAM: %s, Processor: %s", kind, name, ram, processor)
}

// Notebook is a portable computer
type Notebook struct {
	Name      string
	RAM       string
	Processor string
}

func (n *Notebook) Kind() Kind { return KindNotebook }

func (n *Notebook) Describe() string {
	return describe(n.Kind(), n.Name, n.RAM, n.Processor)
}

// Desktop is a workstation
type Desktop struct {
	Name      string
	RAM       string
	Processor string
}

func (d *Desktop) Kind() Kind { return KindDesktop }

func (d *Desktop) Describe() string {
	return describe(d.Kind(), d.Name, d.RAM, d.Processor)
}

// Server is rack equipment
type Server struct {
	Name      string
	RAM       string
	Processor string
}

func (s *Server) Kind() Kind { return KindServer }

func (s *Server) Describe() string {
	return describe(s.Kind(), s.Name, s.RAM, s.Processor)
}
