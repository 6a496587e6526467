package platform_test

import (
	"testing"

	"esl-manager/core/platform"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		want    bool
	}{
		{"SoluM", platform.ProfileSolum, true},
		{"Pricer", platform.ProfilePricer, true},
		{"Generic", platform.ProfileGeneric, true},
		{"Invalid", "invalid", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := platform.Config{Profile: tt.profile}
			assert.Equal(t, tt.want, c.IsValidProfile())
		})
	}
}

func TestGetProfileByName(t *testing.T) {
	p, err := platform.GetProfileByName(platform.ProfileSolum)
	assert.NoError(t, err)
	assert.Equal(t, platform.ProfileSolum, p.Name)
	assert.Contains(t, p.LabelsPath, "%s")

	_, err = platform.GetProfileByName("bogus")
	assert.Error(t, err)
}
