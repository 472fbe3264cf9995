// Package testfixtures provides enumeration types shared by tests.
package testfixtures

import "github.com/broady/enumeration"

// Permission is an integer-keyed enumeration with a name payload.
type Permission struct {
	enumeration.Enum[int]
	Name string
}

var (
	PermissionNone   = &Permission{Enum: enumeration.New(1), Name: "None"}
	PermissionView   = &Permission{Enum: enumeration.New(2), Name: "View"}
	PermissionCreate = &Permission{Enum: enumeration.New(3), Name: "Create"}
	PermissionEdit   = &Permission{Enum: enumeration.New(4), Name: "Edit"}
	PermissionDelete = &Permission{Enum: enumeration.New(5), Name: "Delete"}
)

// Permissions are declared out of key order on purpose.
var Permissions = enumeration.Define[*Permission, int](
	PermissionDelete,
	PermissionNone,
	PermissionEdit,
	PermissionView,
	PermissionCreate,
)
