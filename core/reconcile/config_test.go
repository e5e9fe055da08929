package reconcile_test

import (
	"testing"

	"gameframe/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Options(t *testing.T) {
	cfg := reconcile.Config{TweetCap: 10, Blacklist: " amazon, ,walmart ", Outlets: "IGN,Polygon"}

	opts := cfg.Options()
	assert.Equal(t, 10, opts.TweetCap)
	assert.Equal(t, []string{"amazon", "walmart"}, opts.Blacklist)
	assert.Equal(t, []string{"IGN", "Polygon"}, cfg.OutletList())

	assert.Nil(t, reconcile.Config{}.OutletList())
	assert.Nil(t, reconcile.SplitList(""))
}
