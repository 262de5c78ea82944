package entity

import (
	"strings"
)

//TagName defines column annotation tag
const TagName = "sqlx"

//Tag represent field tag
type Tag struct {
	Column        string
	Autoincrement bool
	PrimaryKey    bool
	Computed      bool
	Transient     bool
}

//ParseTag parses tag i.e. `sqlx:"name=Id,primaryKey=true"`, `sqlx:"Id,autoincrement"`, `sqlx:"computed"`, `sqlx:"-"`
func ParseTag(tagString string) *Tag {
	tag := &Tag{}
	if tagString == "-" {
		tag.Transient = true
		return tag
	}
	if tagString == "" {
		return tag
	}
	elements := strings.Split(tagString, ",")
	for i, element := range elements {
		nv := strings.SplitN(element, "=", 2)
		switch len(nv) {
		case 2:
			value := strings.TrimSpace(nv[1])
			switch strings.ToLower(strings.TrimSpace(nv[0])) {
			case "name":
				tag.Column = value
			case "primarykey", "key":
				tag.PrimaryKey = value == "true" || value == ""
			case "autoincrement":
				tag.Autoincrement = value == "true" || value == ""
			case "computed":
				tag.Computed = value == "true" || value == ""
			case "generator":
				tag.Autoincrement = value == "autoincrement"
			}
			continue
		case 1:
			element = strings.TrimSpace(element)
			switch strings.ToLower(element) {
			case "autoincrement", "identity":
				tag.Autoincrement = true
			case "primarykey", "key":
				tag.PrimaryKey = true
			case "computed":
				tag.Computed = true
			case "-":
				tag.Transient = true
			default:
				if i == 0 {
					tag.Column = element
				}
			}
		}
	}
	tag.PrimaryKey = tag.PrimaryKey || tag.Autoincrement
	return tag
}

func (t *Tag) role() Role {
	switch {
	case t.Computed:
		return RoleComputed
	case t.PrimaryKey:
		return RoleKey
	}
	return RoleNormal
}

func (t *Tag) columnName(fieldName string) string {
	if t.Column == "" {
		return fieldName
	}
	if index := strings.Index(t.Column, "|"); index != -1 { //first of alternative names
		return t.Column[:index]
	}
	return t.Column
}
