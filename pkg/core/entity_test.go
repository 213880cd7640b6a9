package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EntityType
		wantErr bool
	}{
		{name: "post", input: "post", want: EntityPost},
		{name: "bookmark", input: "bookmark", want: EntityBookmark},
		{name: "stack", input: "stack", want: EntityStack},
		{name: "work", input: "work", want: EntityWork},
		{name: "question", input: "question", want: EntityQuestion},
		{name: "mixed case and spaces", input: "  Stack ", want: EntityStack},
		{name: "unknown", input: "video", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntityType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidEntityType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityTypes_ReturnsCopy(t *testing.T) {
	types := EntityTypes()
	require.Len(t, types, 5)
	types[0] = "mutated"

	assert.Equal(t, EntityPost, EntityTypes()[0])
}

func TestEntityKey_Validate(t *testing.T) {
	tests := []struct {
		name    string
		key     EntityKey
		wantErr error
	}{
		{name: "valid", key: EntityKey{ID: "abc", Type: EntityPost}},
		{name: "empty id", key: EntityKey{ID: "", Type: EntityPost}, wantErr: ErrEmptyEntityID},
		{name: "blank id", key: EntityKey{ID: "   ", Type: EntityWork}, wantErr: ErrEmptyEntityID},
		{name: "bad type", key: EntityKey{ID: "abc", Type: "video"}, wantErr: ErrInvalidEntityType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComment_CanDelete(t *testing.T) {
	c := &Comment{ID: "c1", Author: Author{ID: "u1", Name: "Ada"}}

	assert.False(t, c.CanDelete(nil), "anonymous viewers cannot delete")
	assert.True(t, c.CanDelete(&UserSession{ID: "u1"}), "author can delete")
	assert.False(t, c.CanDelete(&UserSession{ID: "u2"}), "other users cannot delete")
	assert.True(t, c.CanDelete(&UserSession{ID: "u2", IsAdmin: true}), "admin can delete")
	assert.False(t, (&Comment{}).CanDelete(&UserSession{}), "empty ids never match")
}

func TestUserSession_Initial(t *testing.T) {
	var nilSession *UserSession
	assert.Equal(t, "", nilSession.Initial())
	assert.Equal(t, "", (&UserSession{}).Initial())
	assert.Equal(t, "A", (&UserSession{Name: "Amaan"}).Initial())
	assert.Equal(t, "É", (&UserSession{Name: "Émile"}).Initial())
}

func TestUser_Session(t *testing.T) {
	var nilUser *User
	assert.Nil(t, nilUser.Session())

	u := &User{ID: "u1", Name: "Ada", Image: "/a.png", IsAdmin: true, PasswordHash: "secret"}
	s := u.Session()
	require.NotNil(t, s)
	assert.Equal(t, UserSession{ID: "u1", Name: "Ada", Image: "/a.png", IsAdmin: true}, *s)
}
