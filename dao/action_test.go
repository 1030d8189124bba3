package dao

import (
	"Kudos/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestActionDAO(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewActionDAO(db)

	all, err := d.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(models.DefaultActions()))
	assert.Equal(t, "Promote", all[0].Name)
	assert.Equal(t, "Spam", all[len(all)-1].Name)

	// sort 优先于 action_id
	require.NoError(t, db.Create(&models.Action{Name: "First", Sort: 0}).Error)
	all, err = d.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "First", all[0].Name)

	lol, err := d.GetByID(ctx, all[4].ActionID)
	require.NoError(t, err)
	assert.Equal(t, "LOL", lol.Name)
	assert.Equal(t, 0, lol.AwardValue)

	_, err = d.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
