package validx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/taskapi/pkg/idx"
)

type taskInput struct {
	Title        string `json:"title" validate:"required,max=10"`
	DueDate      string `json:"dueDate" validate:"required,iso8601,future"`
	AssignedUser string `json:"assignedUser" validate:"required,ulid"`
}

func (taskInput) ValidationMessages() map[string]string {
	return map[string]string{
		"title.max":      "Title cannot exceed 10 characters",
		"dueDate.future": "Due date must be in the future",
	}
}

var fixedNow = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

func newValidator() *Validator {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func fields(err error) map[string]string {
	var ve Errors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestStruct_Valid(t *testing.T) {
	v := newValidator()
	err := v.Struct(taskInput{
		Title:        "short",
		DueDate:      "2030-01-02T00:00:00Z",
		AssignedUser: idx.New().String(),
	})
	require.NoError(t, err)
}

func TestStruct_FieldErrors(t *testing.T) {
	v := newValidator()

	err := v.Struct(taskInput{
		Title:        "much too long for this",
		DueDate:      "not a date",
		AssignedUser: "507f1f77bcf86cd799439011",
	})
	require.Error(t, err)

	got := fields(err)
	require.Equal(t, "Title cannot exceed 10 characters", got["title"])
	require.Equal(t, "Please enter a valid date", got["dueDate"])
	require.Equal(t, "Please enter a valid ID", got["assignedUser"])
}

func TestStruct_Required(t *testing.T) {
	got := fields(newValidator().Struct(taskInput{}))
	require.Len(t, got, 3)
	require.Equal(t, "title is required", got["title"])
}

func TestFuture(t *testing.T) {
	v := newValidator()
	id := idx.New().String()

	tests := []struct {
		name string
		due  string
		ok   bool
	}{
		{"exactly now", fixedNow.Format(time.RFC3339), false},
		{"one second ago", fixedNow.Add(-time.Second).Format(time.RFC3339), false},
		{"one second ahead", fixedNow.Add(time.Second).Format(time.RFC3339), true},
		{"next day date only", "2030-01-02", true},
		{"same day date only", "2030-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(taskInput{Title: "x", DueDate: tt.due, AssignedUser: id})
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Equal(t, "Due date must be in the future", fields(err)["dueDate"])
		})
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	err := newValidator().Struct("nope")
	require.Error(t, err)
	var ve Errors
	require.False(t, errors.As(err, &ve))
}

func TestStruct_Email(t *testing.T) {
	type profile struct {
		Email string `json:"useremail" validate:"required,email"`
	}
	v := New()
	require.NoError(t, v.Struct(profile{Email: "alice@example.com"}))
	for _, in := range []string{"alice", "alice@"} {
		require.Equal(t, map[string]string{"useremail": "Please enter a valid email"}, fields(v.Struct(profile{Email: in})), in)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2030-05-01", time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2030-05-01T10:30", time.Date(2030, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"2030-05-01T10:30:15", time.Date(2030, 5, 1, 10, 30, 15, 0, time.UTC)},
		{"2030-05-01T10:30:15.250", time.Date(2030, 5, 1, 10, 30, 15, 250_000_000, time.UTC)},
		{"2030-05-01T10:30:15Z", time.Date(2030, 5, 1, 10, 30, 15, 0, time.UTC)},
		{"2030-05-01T12:30:15+02:00", time.Date(2030, 5, 1, 10, 30, 15, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		require.NoError(t, err, tt.in)
		require.True(t, tt.want.Equal(got), "%s: got %s", tt.in, got)
	}

	for _, bad := range []string{"", "tomorrow", "2030-13-01", "01/05/2030", "2030-05-01 10:30"} {
		_, err := ParseDate(bad)
		require.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"  Alice@Example.COM ":       "alice@example.com",
		"John.Doe+work@gmail.com":    "johndoe@gmail.com",
		"j.doe@googlemail.com":       "jdoe@gmail.com",
		"bob+news@outlook.com":       "bob@outlook.com",
		"bob+news@hotmail.com":       "bob@hotmail.com",
		"carol+x@icloud.com":         "carol@icloud.com",
		"dave-lists@yahoo.com":       "dave@yahoo.com",
		"first.last+tag@example.com": "first.last+tag@example.com",
		"not-an-email":               "not-an-email",
		"+only@gmail.com":            "+only@gmail.com",
	}
	for in, want := range tests {
		require.Equal(t, want, NormalizeEmail(in), in)
	}
}
