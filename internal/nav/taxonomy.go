package nav

import (
	"path"
)

// Persona is the intended audience of a content subtree.
type Persona string

const (
	PersonaUser  Persona = "user"
	PersonaAdmin Persona = "admin"
	PersonaDev   Persona = "dev"
)

// Personas lists every persona in the order sections are rendered.
var Personas = []Persona{PersonaUser, PersonaAdmin, PersonaDev}

// ParsePersona returns the persona named by s.
func ParsePersona(s string) (Persona, bool) {
	for _, persona := range Personas {
		if string(persona) == s {
			return persona, true
		}
	}

	return "", false
}

// SectionTitle is the title of the persona section in the User Manual.
func (persona Persona) SectionTitle() string {
	switch persona {
	case PersonaUser:
		return "Usage"
	case PersonaAdmin:
		return "Administration"
	case PersonaDev:
		return "Development"
	}

	return string(persona)
}

// ContentType is a taxonomy bucket.
type ContentType string

const (
	ContentTutorials ContentType = "tutorials"
	ContentGuides    ContentType = "guides"
	ContentLearn     ContentType = "learn"
	ContentReference ContentType = "reference"
)

// ContentTypes lists every bucket in render order.
var ContentTypes = []ContentType{ContentTutorials, ContentGuides, ContentLearn, ContentReference}

// ParseContentType returns the content type named by s.
func ParseContentType(s string) (ContentType, bool) {
	for _, ct := range ContentTypes {
		if string(ct) == s {
			return ct, true
		}
	}

	return "", false
}

// Title is the bucket title shown in the navigation.
func (ct ContentType) Title() string {
	switch ct {
	case ContentTutorials:
		return "Tutorials"
	case ContentGuides:
		return "How-to Guides"
	case ContentLearn:
		return "Learn More"
	case ContentReference:
		return "Reference"
	}

	return string(ct)
}

const (
	indexFile = "index.md"
	docsDir   = "docs"
)

// IndexURI is the site path of the component's user index page.
func IndexURI(slug string) string {
	return path.Join(slug, indexFile)
}

// DevIndexURI is the site path of the component's developer index page.
func DevIndexURI(slug string) string {
	return path.Join(slug, docsDir, string(PersonaDev), indexFile)
}

// ContentDir is the site directory holding one taxonomy bucket of one persona.
func ContentDir(slug string, persona Persona, ct ContentType) string {
	return path.Join(slug, docsDir, string(persona), string(ct))
}

// URI is the site path of a page in a taxonomy bucket.
func URI(slug string, persona Persona, ct ContentType, name string) string {
	return path.Join(ContentDir(slug, persona, ct), name)
}
