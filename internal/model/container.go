package model

import "strings"

// FieldSeparator erottaa kentät docker ps --format rivillä
const FieldSeparator = "||"

// ListFormat on docker ps -a --format template, joka tuottaa yhden
// ID||Name||Status rivin per container
const ListFormat = "{{.ID}}" + FieldSeparator + "{{.Names}}" + FieldSeparator + "{{.Status}}"

// Container represents one container of a snapshot.
type Container struct {
	ID     string
	Name   string
	Status string // free text, e.g. "Up 3 days"
}

// ParseLine parses a single ID||Name||Status line. Fields after the third
// are ignored. Returns false if the line has fewer than three fields.
func ParseLine(line string) (Container, bool) {
	parts := strings.Split(line, FieldSeparator)
	if len(parts) < 3 {
		return Container{}, false
	}
	return Container{
		ID:     parts[0],
		Name:   parts[1],
		Status: parts[2],
	}, true
}

// Line palauttaa containerin docker ps --format muodossa
func (c Container) Line() string {
	return c.ID + FieldSeparator + c.Name + FieldSeparator + c.Status
}

// TabLine returns the tab separated form written to the snapshot log.
func (c Container) TabLine() string {
	return c.ID + "\t" + c.Name + "\t" + c.Status
}
