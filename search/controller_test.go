package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerTypingDoesNotNotify(t *testing.T) {
	c := NewController()

	var notified []string
	c.Subscribe(func(term string) { notified = append(notified, term) })

	c.SetTypedText("o")
	c.SetTypedText("oct")
	c.SetTypedText("octocat")

	assert.Empty(t, notified)
	assert.Equal(t, "octocat", c.TypedText())
	assert.Equal(t, "", c.Committed())
}

func TestControllerCommit(t *testing.T) {
	c := NewController()

	var notified []string
	c.Subscribe(func(term string) { notified = append(notified, term) })

	c.SetTypedText("octocat")
	c.Commit()
	c.Commit()

	assert.Equal(t, []string{"octocat", "octocat"}, notified, "re-commit notifies again")
	assert.Equal(t, "octocat", c.Committed())

	c.SetTypedText("")
	c.Commit()

	assert.Equal(t, []string{"octocat", "octocat", ""}, notified)
	assert.Equal(t, "", c.Committed())
}

func TestControllerObserverOrderAndUnsubscribe(t *testing.T) {
	c := NewController()

	var calls []string
	unsubscribeFirst := c.Subscribe(func(term string) { calls = append(calls, "first:"+term) })
	c.Subscribe(func(term string) { calls = append(calls, "second:"+term) })

	c.SetTypedText("a")
	c.Commit()

	unsubscribeFirst()
	unsubscribeFirst()

	c.SetTypedText("b")
	c.Commit()

	assert.Equal(t, []string{"first:a", "second:a", "second:b"}, calls)
}

func TestControllerObserverMayReenter(t *testing.T) {
	c := NewController()

	var seen string
	c.Subscribe(func(term string) {
		seen = c.Committed() + "/" + c.TypedText()
	})

	c.SetTypedText("octocat")
	c.Commit()

	assert.Equal(t, "octocat/octocat", seen)
}
