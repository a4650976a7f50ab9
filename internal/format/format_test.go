package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	assert.Equal(t, "0", Int(0))
	assert.Equal(t, "999", Int(999))
	assert.Equal(t, "1,000", Int(1000))
	assert.Equal(t, "1,755,000", Int(1755000))
	assert.Equal(t, "-52,650", Int(-52650))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "₹514,400", Money(514400))
	assert.Equal(t, "₹211", Money(210.6))
	assert.Equal(t, "-₹52,650", Money(-52650))
}

func TestPct(t *testing.T) {
	assert.Equal(t, "17.59%", Pct(17.59))
	assert.Equal(t, "0.00%", Pct(0))
}
