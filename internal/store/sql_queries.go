package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createAccount = `INSERT INTO accounts (username, email, password, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at;`

	findAccountByUsername = `SELECT id, username, email, password, role, created_at
    FROM accounts
    WHERE username = $1;`

	findAccountByEmail = `SELECT id, username, email, password, role, created_at
    FROM accounts
    WHERE email = $1;`

	updateAccountPassword = `UPDATE accounts
    SET password = $2
    WHERE id = $1;`

	createStudentProfile = `INSERT INTO student_profiles (account_id, first_name, last_name, class_id)
    VALUES ($1, $2, $3, NULLIF($4, 0));`

	createParentProfile = `INSERT INTO parent_profiles (account_id, first_name, last_name, mother_name, mother_phone, father_name, father_phone)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	createTeacherProfile = `INSERT INTO teacher_profiles (account_id, first_name, last_name, subject, type)
    VALUES ($1, $2, $3, $4, $5);`

	findStudentProfile = `SELECT first_name, last_name, COALESCE(class_id, 0)
    FROM student_profiles
    WHERE account_id = $1;`

	findParentProfile = `SELECT first_name, last_name, mother_name, mother_phone, father_name, father_phone
    FROM parent_profiles
    WHERE account_id = $1;`

	findTeacherProfile = `SELECT first_name, last_name, subject, type
    FROM teacher_profiles
    WHERE account_id = $1;`

	deleteResetTokensByAccount = `DELETE FROM password_reset_tokens
    WHERE account_id = $1;`

	createResetToken = `INSERT INTO password_reset_tokens (account_id, token, expiry_date, used)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	findResetTokenByToken = `SELECT id, account_id, token, expiry_date, used
    FROM password_reset_tokens
    WHERE token = $1;`

	markResetTokenUsed = `UPDATE password_reset_tokens
    SET used = TRUE
    WHERE id = $1;`

	purgeDeadResetTokens = `DELETE FROM password_reset_tokens
    WHERE expiry_date < now() OR used = TRUE;`

	createClass = `INSERT INTO classes (name, year)
    VALUES ($1, $2)
    RETURNING id;`

	listClasses = `SELECT id, name, year
    FROM classes
    ORDER BY year, name;`

	createSession = `INSERT INTO class_sessions (class_id, teacher_id, subject, held_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	findSessionByID = `SELECT id, class_id, teacher_id, subject, held_at
    FROM class_sessions
    WHERE id = $1;`

	createGrade = `INSERT INTO grades (session_id, student_id, value)
    VALUES ($1, $2, $3)
    RETURNING id, created_at;`

	createAbsence = `INSERT INTO absences (session_id, student_id, excused)
    VALUES ($1, $2, $3)
    RETURNING id, created_at;`

	createMenuItem = `INSERT INTO menu_items (name, weekday, price_cents)
    VALUES ($1, $2, $3)
    RETURNING id;`

	deleteMenuItem = `DELETE FROM menu_items
    WHERE id = $1;`
)

// GradeFilter narrows a grade listing. Zero values mean "no constraint".
type GradeFilter struct {
	StudentID int64
	SessionID int64
}

// AbsenceFilter narrows an absence listing. Zero values mean "no constraint".
// ExcusedOnly limits the result to excused absences when true.
type AbsenceFilter struct {
	StudentID   int64
	SessionID   int64
	ExcusedOnly bool
}

// psql is the squirrel statement builder configured for PostgreSQL
// placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListGradesQuery assembles the filtered grade listing query.
func buildListGradesQuery(filter GradeFilter) (string, []any, error) {
	builder := psql.
		Select("id", "session_id", "student_id", "value", "created_at").
		From("grades").
		OrderBy("created_at DESC")

	if filter.StudentID != 0 {
		builder = builder.Where(sq.Eq{"student_id": filter.StudentID})
	}
	if filter.SessionID != 0 {
		builder = builder.Where(sq.Eq{"session_id": filter.SessionID})
	}

	return builder.ToSql()
}

// buildListAbsencesQuery assembles the filtered absence listing query.
func buildListAbsencesQuery(filter AbsenceFilter) (string, []any, error) {
	builder := psql.
		Select("id", "session_id", "student_id", "excused", "created_at").
		From("absences").
		OrderBy("created_at DESC")

	if filter.StudentID != 0 {
		builder = builder.Where(sq.Eq{"student_id": filter.StudentID})
	}
	if filter.SessionID != 0 {
		builder = builder.Where(sq.Eq{"session_id": filter.SessionID})
	}
	if filter.ExcusedOnly {
		builder = builder.Where(sq.Eq{"excused": true})
	}

	return builder.ToSql()
}

// buildListMenuQuery assembles the menu listing query, optionally narrowed
// to a single ISO weekday (1 = Monday).
func buildListMenuQuery(weekday int) (string, []any, error) {
	builder := psql.
		Select("id", "name", "weekday", "price_cents").
		From("menu_items").
		OrderBy("weekday", "name")

	if weekday != 0 {
		builder = builder.Where(sq.Eq{"weekday": weekday})
	}

	return builder.ToSql()
}
