// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the identifiers assigned by the Directory Store.

Every created category, artisan, contact message and account receives a
Version 7 UUID. The values sort by creation time, which keeps primary key
indexes append-only in PostgreSQL and makes ids readable in logs.
*/
package uuid

import "github.com/google/uuid"

// New returns a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
