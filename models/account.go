// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vasilcai

package models

import "time"

// Account represents a single account of any role. Common identity and
// credential fields live here; role-specific attributes live in exactly one
// of the profile pointers, selected by Role.
//
// Invariants:
//   - Username and Email are unique across all roles combined.
//   - Password holds a bcrypt hash, never plaintext.
//   - The populated profile pointer must match Role
//     (see [Account.HasMatchingProfile]);
//     Admin and Chef accounts carry no profile at all.
type Account struct {
	// ID is the internal unique identifier of the account, assigned by the
	// database on insert.
	ID int64 `json:"id"`

	// Username is the globally unique login identifier
	// (e.g. "maria.popescu.prof").
	Username string `json:"username"`

	// Email is the globally unique contact address of the account holder.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the account password.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Role selects the concrete account variant.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// Student is populated iff Role == RoleStudent.
	Student *StudentProfile `json:"student,omitempty"`

	// Parent is populated iff Role == RoleParent.
	Parent *ParentProfile `json:"parent,omitempty"`

	// Teacher is populated iff Role == RoleTeacher.
	Teacher *TeacherProfile `json:"teacher,omitempty"`
}

// StudentProfile holds the attributes specific to student accounts.
type StudentProfile struct {
	// FirstName and LastName are the student's legal names.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// ClassID references the school class the student is assigned to.
	// Zero means the student has not been assigned to a class yet.
	ClassID int64 `json:"class_id"`
}

// ParentProfile holds the attributes specific to parent accounts.
type ParentProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// MotherName and MotherPhone are the contact details of the mother.
	MotherName  string `json:"mother_name"`
	MotherPhone string `json:"mother_phone"`

	// FatherName and FatherPhone are the contact details of the father.
	FatherName  string `json:"father_name"`
	FatherPhone string `json:"father_phone"`
}

// TeacherProfile holds the attributes specific to teacher accounts.
type TeacherProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Subject is the discipline the teacher teaches (e.g. "Mathematics").
	Subject string `json:"subject"`

	// Type distinguishes the kind of teacher (e.g. "TITULAR", "SUPLINITOR").
	Type string `json:"type"`
}

// HasMatchingProfile reports whether the populated profile variant matches
// the declared Role. The switch is exhaustive over all roles; an unknown
// role never matches.
func (a Account) HasMatchingProfile() bool {
	switch a.Role {
	case RoleStudent:
		return a.Student != nil && a.Parent == nil && a.Teacher == nil
	case RoleParent:
		return a.Parent != nil && a.Student == nil && a.Teacher == nil
	case RoleTeacher:
		return a.Teacher != nil && a.Student == nil && a.Parent == nil
	case RoleAdmin, RoleChef:
		return a.Student == nil && a.Parent == nil && a.Teacher == nil
	default:
		return false
	}
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
