package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPForLike(t *testing.T) {
	t.Parallel()

	cases := []struct {
		target TargetType
		amount int
	}{
		{TargetPost, XPForLikeReceived},
		{TargetComment, XPForLikeReceived},
		{TargetReview, XPForLikeReceivedRich},
		{TargetTip, XPForLikeReceivedRich},
		{TargetWiki, XPForLikeReceivedRich},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.amount, XPForLike(tc.target), "target=%s", tc.target)
	}
}
