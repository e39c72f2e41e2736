package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse_Validate(t *testing.T) {
	nc := NewCourse{Name: "  Welding Basics  ", Price: 1500, Duration: "2 Days"}
	require.NoError(t, nc.Validate())
	assert.Equal(t, "Welding Basics", nc.Name)

	nc = NewCourse{Price: 1500, Duration: "2 Days"}
	assert.Error(t, nc.Validate())

	nc = NewCourse{Name: "Welding Basics", Price: -1, Duration: "2 Days"}
	assert.Error(t, nc.Validate())
}

func TestUpdateCourse_Validate_fillsBlanks(t *testing.T) {
	orig := Course{ID: "c1", Name: "Welding Basics", Price: 1500, Duration: "2 Days"}

	uc := UpdateCourse{Name: "Advanced Welding"}
	require.NoError(t, uc.Validate(orig))
	assert.Equal(t, "Advanced Welding", uc.Name)
	assert.Equal(t, "2 Days", uc.Duration)
	require.NotNil(t, uc.Price)
	assert.Equal(t, 1500.0, *uc.Price)

	price := 900.0
	uc = UpdateCourse{Price: &price}
	require.NoError(t, uc.Validate(orig))
	assert.Equal(t, "Welding Basics", uc.Name)
	assert.Equal(t, 900.0, *uc.Price)
}
