package models

// MainInformation is the metadata of a recipe
type MainInformation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Category    Category `json:"category"`
}

// IsValid reports whether name, description and author are all set
func (m MainInformation) IsValid() bool {
	return m.Name != "" && m.Description != "" && m.Author != ""
}
