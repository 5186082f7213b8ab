// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vasilcai

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListGradesQuery_NoFilter(t *testing.T) {
	query, args, err := buildListGradesQuery(GradeFilter{})
	require.NoError(t, err)

	require.Empty(t, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from grades")
	assert.Contains(t, q, "order by created_at desc")
	assert.NotContains(t, q, "where")
}

func Test_buildListGradesQuery_StudentAndSession(t *testing.T) {
	query, args, err := buildListGradesQuery(GradeFilter{StudentID: 7, SessionID: 3})
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, int64(3), args[1])

	q := strings.ToLower(query)
	assert.Contains(t, q, "student_id = $1")
	assert.Contains(t, q, "session_id = $2")
}

func Test_buildListAbsencesQuery_ExcusedOnly(t *testing.T) {
	query, args, err := buildListAbsencesQuery(AbsenceFilter{StudentID: 7, ExcusedOnly: true})
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, int64(7), args[0])

	q := strings.ToLower(query)
	assert.Contains(t, q, "from absences")
	assert.Contains(t, q, "student_id = $1")
	assert.Contains(t, q, "excused = $2")
}

func Test_buildListMenuQuery(t *testing.T) {
	t.Run("whole week", func(t *testing.T) {
		query, args, err := buildListMenuQuery(0)
		require.NoError(t, err)

		require.Empty(t, args)

		q := strings.ToLower(query)
		assert.Contains(t, q, "from menu_items")
		assert.NotContains(t, q, "where")
	})

	t.Run("single weekday", func(t *testing.T) {
		query, args, err := buildListMenuQuery(3)
		require.NoError(t, err)

		require.Len(t, args, 1)
		assert.Equal(t, 3, args[0])

		q := strings.ToLower(query)
		assert.Contains(t, q, "weekday = $1")
	})
}
