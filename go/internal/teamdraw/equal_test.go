package teamdraw

import (
	"testing"

	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func bucketOf(ids ...string) models.TeamBucket {
	b := models.TeamBucket{}
	for _, id := range ids {
		b.Players = append(b.Players, models.Player{ID: id, SkillRating: 1})
		b.TotalSkill++
	}
	return b
}

func TestAreDrawsEqual(t *testing.T) {
	base := models.TeamAssignment{
		models.TeamColorBlue:  bucketOf("a", "b"),
		models.TeamColorRed:   bucketOf("c", "d"),
		models.TeamColorGreen: bucketOf("e", "f"),
	}

	tests := []struct {
		name  string
		other models.TeamAssignment
		want  bool
	}{
		{
			name:  "identical",
			other: base,
			want:  true,
		},
		{
			name: "member order ignored",
			other: models.TeamAssignment{
				models.TeamColorBlue:  bucketOf("b", "a"),
				models.TeamColorRed:   bucketOf("d", "c"),
				models.TeamColorGreen: bucketOf("f", "e"),
			},
			want: true,
		},
		{
			name: "player swapped between teams",
			other: models.TeamAssignment{
				models.TeamColorBlue:  bucketOf("a", "c"),
				models.TeamColorRed:   bucketOf("b", "d"),
				models.TeamColorGreen: bucketOf("e", "f"),
			},
			want: false,
		},
		{
			name: "same groups under other colors",
			other: models.TeamAssignment{
				models.TeamColorBlue:  bucketOf("c", "d"),
				models.TeamColorRed:   bucketOf("a", "b"),
				models.TeamColorGreen: bucketOf("e", "f"),
			},
			want: false,
		},
		{
			name: "extra yellow team",
			other: models.TeamAssignment{
				models.TeamColorBlue:   bucketOf("a", "b"),
				models.TeamColorRed:    bucketOf("c", "d"),
				models.TeamColorGreen:  bucketOf("e", "f"),
				models.TeamColorYellow: bucketOf(),
			},
			want: false,
		},
		{
			name: "missing team",
			other: models.TeamAssignment{
				models.TeamColorBlue: bucketOf("a", "b"),
				models.TeamColorRed:  bucketOf("c", "d"),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreDrawsEqual(base, tt.other))
			assert.Equal(t, tt.want, AreDrawsEqual(tt.other, base))
		})
	}
}

func TestAreDrawsEqual_EmptyAssignments(t *testing.T) {
	assert.True(t, AreDrawsEqual(nil, models.TeamAssignment{}))
}
