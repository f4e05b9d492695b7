package centers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

func TestService_GetBySlug(t *testing.T) {
	repo, err := catalog.NewDefault()
	require.NoError(t, err)

	svc := NewService(repo, logger.NewNop())

	center, err := svc.GetBySlug("serenity-wellness-center")
	require.NoError(t, err)
	assert.Equal(t, "center-3", center.ID)
	assert.Equal(t, "Serenity Wellness Center", center.Name)
	require.Len(t, center.Services, 4)
	assert.Equal(t, "Aromatherapy Massage", center.Services[0].Name)
	assert.Equal(t, 60, center.Services[0].Duration)
	assert.Equal(t, int64(9500), center.Services[0].Price)
	assert.Equal(t, "center-3", center.Services[0].CenterID)

	_, err = svc.GetBySlug("missing")
	assert.ErrorIs(t, err, ErrCenterNotFound)
}

func TestService_List(t *testing.T) {
	repo, err := catalog.NewDefault()
	require.NoError(t, err)

	centers := NewService(repo, logger.NewNop()).List()
	require.Len(t, centers, 3)
	assert.Equal(t, "bella-vita-spa", centers[0].Slug)
	assert.Equal(t, "radiant-beauty-lounge", centers[1].Slug)
}
