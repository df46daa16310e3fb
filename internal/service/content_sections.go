package service

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Section 是页面分区的名称。
type Section string

const (
	SectionHero    Section = "hero"
	SectionAbout   Section = "about"
	SectionContact Section = "contact"
)

// KnownSections 按页面顺序列出全部可编辑分区。
var KnownSections = []Section{SectionHero, SectionAbout, SectionContact}

// ParseSection 将请求中的分区名归一化，未知分区返回 false。
func ParseSection(raw string) (Section, bool) {
	section := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range KnownSections {
		if section == known {
			return section, true
		}
	}
	return "", false
}

// SectionDocument 是各分区文档的公共接口，具体类型见 HeroContent 等。
type SectionDocument interface {
	Section() Section
}

// HeroContent 首屏内容。
type HeroContent struct {
	Title       string `json:"title" validate:"required,max=200"`
	Subtitle    string `json:"subtitle" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	PhotoURL    string `json:"photoUrl,omitempty" validate:"max=500"`
	CvURL       string `json:"cvUrl,omitempty" validate:"max=500"`
}

// Section implements SectionDocument.
func (HeroContent) Section() Section { return SectionHero }

// Certification 证书条目。
type Certification struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
}

// AboutContent 关于我。
type AboutContent struct {
	Title          string          `json:"title" validate:"required,max=200"`
	Paragraphs     []string        `json:"paragraphs" validate:"required,min=1,dive,required"`
	Education      string          `json:"education,omitempty"`
	Language       string          `json:"language,omitempty"`
	Location       string          `json:"location,omitempty"`
	Relocate       string          `json:"relocate,omitempty"`
	Certifications []Certification `json:"certifications,omitempty" validate:"omitempty,dive"`
}

// Section implements SectionDocument.
func (AboutContent) Section() Section { return SectionAbout }

// ContactContent 联系方式分区。
type ContactContent struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	LinkedIn    string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub      string `json:"github,omitempty" validate:"omitempty,url"`
	Location    string `json:"location,omitempty"`
	Relocate    string `json:"relocate,omitempty"`
	DioProfile  string `json:"dioProfile,omitempty" validate:"omitempty,url"`
}

// Section implements SectionDocument.
func (ContactContent) Section() Section { return SectionContact }

// DecodeSectionDocument 按分区解析并校验文档，未知字段会被丢弃。
func DecodeSectionDocument(section Section, raw []byte) (SectionDocument, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, NewValidationError("content", "must be a JSON object")
	}

	var doc SectionDocument
	switch section {
	case SectionHero:
		var hero HeroContent
		if err := json.Unmarshal(trimmed, &hero); err != nil {
			return nil, NewValidationError("content", "is malformed: "+err.Error())
		}
		hero.normalize()
		doc = hero
	case SectionAbout:
		var about AboutContent
		if err := json.Unmarshal(trimmed, &about); err != nil {
			return nil, NewValidationError("content", "is malformed: "+err.Error())
		}
		about.normalize()
		doc = about
	case SectionContact:
		var contact ContactContent
		if err := json.Unmarshal(trimmed, &contact); err != nil {
			return nil, NewValidationError("content", "is malformed: "+err.Error())
		}
		contact.normalize()
		doc = contact
	default:
		return nil, ErrSectionNotFound
	}

	if err := validateStruct(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (h *HeroContent) normalize() {
	h.Title = strings.TrimSpace(h.Title)
	h.Subtitle = strings.TrimSpace(h.Subtitle)
	h.Description = strings.TrimSpace(h.Description)
	h.PhotoURL = strings.TrimSpace(h.PhotoURL)
	h.CvURL = strings.TrimSpace(h.CvURL)
}

func (a *AboutContent) normalize() {
	a.Title = strings.TrimSpace(a.Title)
	paragraphs := make([]string, 0, len(a.Paragraphs))
	for _, paragraph := range a.Paragraphs {
		if trimmed := strings.TrimSpace(paragraph); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	a.Paragraphs = paragraphs
	a.Education = strings.TrimSpace(a.Education)
	a.Language = strings.TrimSpace(a.Language)
	a.Location = strings.TrimSpace(a.Location)
	a.Relocate = strings.TrimSpace(a.Relocate)
	for i := range a.Certifications {
		a.Certifications[i].Name = strings.TrimSpace(a.Certifications[i].Name)
		a.Certifications[i].Issuer = strings.TrimSpace(a.Certifications[i].Issuer)
	}
}

func (c *ContactContent) normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Email = strings.TrimSpace(c.Email)
	c.LinkedIn = strings.TrimSpace(c.LinkedIn)
	c.GitHub = strings.TrimSpace(c.GitHub)
	c.Location = strings.TrimSpace(c.Location)
	c.Relocate = strings.TrimSpace(c.Relocate)
	c.DioProfile = strings.TrimSpace(c.DioProfile)
}
