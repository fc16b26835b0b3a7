package models

// CommandDescriptor is the structured metadata recovered from generated
// command source. Name is never empty.
type CommandDescriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Options     []OptionDescriptor `json:"options"`
}

// OptionDescriptor is one typed parameter of a command, in declaration order.
type OptionDescriptor struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}
