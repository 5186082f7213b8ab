package models

import "time"

// SchoolClass is a named group of students (e.g. "5A") taught through class
// sessions during a school year.
type SchoolClass struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Year is the study year the class belongs to (e.g. 5 for "5A").
	Year int `json:"year"`
}

// ClassSession is a single held lesson: a teacher teaching a subject to a
// class at a point in time. Grades and absences are always recorded against
// a session.
type ClassSession struct {
	ID        int64     `json:"id"`
	ClassID   int64     `json:"class_id"`
	TeacherID int64     `json:"teacher_id"`
	Subject   string    `json:"subject"`
	HeldAt    time.Time `json:"held_at"`
}

// Grade is a mark given to a student during a class session.
type Grade struct {
	ID        int64 `json:"id"`
	SessionID int64 `json:"session_id"`
	StudentID int64 `json:"student_id"`

	// Value is the mark on the 1..10 scale.
	Value int `json:"value"`

	CreatedAt time.Time `json:"created_at"`
}

// Absence records that a student missed a class session. An absence may
// later be excused (e.g. after a medical note is presented).
type Absence struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	StudentID int64     `json:"student_id"`
	Excused   bool      `json:"excused"`
	CreatedAt time.Time `json:"created_at"`
}
