package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Areuc/MyrepsCL/models"
	"github.com/Areuc/MyrepsCL/store"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", formatElapsed(0))
	assert.Equal(t, "00:59", formatElapsed(59))
	assert.Equal(t, "01:05", formatElapsed(65))
	assert.Equal(t, "10:00", formatElapsed(600))
}

// dialHubClient upgrades one connection, registers its server side with the
// hub and hands back both ends.
func dialHubClient(t *testing.T, hub *RealtimeHub, userID string) (*websocket.Conn, *WSClient) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := NewWSClient(userID, conn)
		hub.Register(cl)
		registered <- cl
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, <-registered
}

func tickerFixture(t *testing.T) (*WorkoutService, *RealtimeHub, models.Routine) {
	t.Helper()
	st := store.NewMemoryStore()
	routines := NewRoutineService(st)
	hub := NewRealtimeHub()
	svc := NewWorkoutService(st, routines, hub)

	routine, err := routines.Create("u1", RoutineInput{
		Name:      "Push Day",
		Exercises: []models.RoutineExercise{{ExerciseID: "ex1", Sets: 1, Reps: "8-12", RestTimeSeconds: 60}},
	})
	require.NoError(t, err)
	return svc, hub, routine
}

func readTick(t *testing.T, conn *websocket.Conn) SessionTick {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var tick SessionTick
	require.NoError(t, json.Unmarshal(data, &tick))
	return tick
}

func TestSessionTicksReachClientAndStopOnFinish(t *testing.T) {
	svc, hub, routine := tickerFixture(t)
	conn, _ := dialHubClient(t, hub, "u1")

	view, err := svc.Start("u1", routine.ID)
	require.NoError(t, err)

	tick := readTick(t, conn)
	assert.Equal(t, view.ID, tick.SessionID)
	assert.GreaterOrEqual(t, tick.ElapsedSeconds, 0)
	assert.Equal(t, formatElapsed(tick.ElapsedSeconds), tick.Display)

	_, err = svc.Advance("u1")
	require.NoError(t, err)
	_, err = svc.RateAndFinish("u1", models.RatingFair)
	require.NoError(t, err)

	// at most one in-flight tick may still arrive, then silence
	var stopped bool
	for i := 0; i < 3; i++ {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(1500*time.Millisecond)))
		if _, _, err := conn.ReadMessage(); err != nil {
			stopped = true
			break
		}
	}
	assert.True(t, stopped, "ticks kept arriving after the session finished")
}

func TestSessionTicksStopOnAbandon(t *testing.T) {
	svc, hub, routine := tickerFixture(t)
	conn, _ := dialHubClient(t, hub, "u1")

	_, err := svc.Start("u1", routine.ID)
	require.NoError(t, err)
	readTick(t, conn)

	require.NoError(t, svc.Abandon("u1"))

	var stopped bool
	for i := 0; i < 3; i++ {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(1500*time.Millisecond)))
		if _, _, err := conn.ReadMessage(); err != nil {
			stopped = true
			break
		}
	}
	assert.True(t, stopped, "ticks kept arriving after the session was abandoned")
}

func TestReplacementSessionTakesOverTicks(t *testing.T) {
	svc, hub, routine := tickerFixture(t)
	conn, _ := dialHubClient(t, hub, "u1")

	first, err := svc.Start("u1", routine.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, readTick(t, conn).SessionID)

	second, err := svc.Start("u1", routine.ID)
	require.NoError(t, err)
	defer func() { _ = svc.Abandon("u1") }()

	// skip anything broadcast before the replacement landed
	var tick SessionTick
	for i := 0; i < 4; i++ {
		tick = readTick(t, conn)
		if tick.SessionID == second.ID {
			break
		}
	}
	require.Equal(t, second.ID, tick.SessionID)

	// the first session's ticker is gone
	for i := 0; i < 2; i++ {
		assert.Equal(t, second.ID, readTick(t, conn).SessionID)
	}
}

func TestWSClientSerializesPingsAndBroadcasts(t *testing.T) {
	hub := NewRealtimeHub()
	conn, cl := dialHubClient(t, hub, "u1")

	// drain the client side so writes never block
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingErr := make(chan error, 1)
	go func() {
		var firstErr error
		for i := 0; i < 50; i++ {
			if err := cl.Ping(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		pingErr <- firstErr
	}()
	for i := 0; i < 50; i++ {
		hub.Broadcast("u1", SessionTick{SessionID: "s1", ElapsedSeconds: i, Display: formatElapsed(i)})
	}
	require.NoError(t, <-pingErr)
}
