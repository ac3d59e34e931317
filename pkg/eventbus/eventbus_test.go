package eventbus_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/pkg/eventbus"
)

type importFinished struct {
	File    string
	Success int
	Failure int
}

func newTestBus() eventbus.EventBus {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return eventbus.NewEventPublisher(log)
}

func TestPublish_DeliversToMatchingSubscriber(t *testing.T) {
	bus := newTestBus()

	var got importFinished
	bus.Subscribe(func(ev importFinished) {
		got = ev
	})

	bus.Publish(importFinished{File: "cartera.xlsx", Success: 3, Failure: 1})

	require.Equal(t, "cartera.xlsx", got.File)
	require.Equal(t, 3, got.Success)
	require.Equal(t, 1, got.Failure)
}

func TestPublish_SkipsNonMatchingSubscriber(t *testing.T) {
	bus := newTestBus()

	called := false
	bus.Subscribe(func(ev struct{ Other string }) {
		called = true
	})

	bus.Publish(importFinished{File: "cartera.xlsx"})

	require.False(t, called)
}

func TestPublish_RecoversFromHandlerPanic(t *testing.T) {
	bus := newTestBus()

	delivered := 0
	bus.Subscribe(func(ev importFinished) {
		panic("boom")
	})
	bus.Subscribe(func(ev importFinished) {
		delivered++
	})

	require.NotPanics(t, func() {
		bus.Publish(importFinished{File: "cartera.xlsx"})
	})
	require.Equal(t, 1, delivered)
}

func TestUnsubscribe_RemovesHandler(t *testing.T) {
	bus := newTestBus()

	handler := func(ev importFinished) {}
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	require.Equal(t, 0, bus.SubscribersCount())
}

func TestMatchSignature(t *testing.T) {
	require.True(t, eventbus.MatchSignature(func(importFinished) {}, []interface{}{importFinished{}}))
	require.False(t, eventbus.MatchSignature(func(importFinished) {}, []interface{}{"nope"}))
	require.False(t, eventbus.MatchSignature("not a func", []interface{}{importFinished{}}))
}
