// Package cubeview keeps an animated 3x3x3 cube in step with the state held
// by an external solving service.
//
// # Overview
//
// The service owns the cube. A Session asks it for the current state, sends
// it moves, and receives one confirmed snapshot per move. The Session plays
// the moves back as timed quarter-turn sweeps and swaps in the matching
// snapshot each time a sweep finishes, so colors only change between sweeps.
//
// # Quick Start
//
//	client := solver.New("http://localhost:8000")
//	s := cubeview.New(client)
//	if err := s.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	s.PushText("R U R' U'")
//	if err := s.SubmitPending(ctx); err != nil {
//	    log.Println(err)
//	}
//
//	// Render loop
//	for {
//	    frame := s.Frame(dt)
//	    draw(frame)
//	}
//
// # Threading
//
// Frame, Accept, Fail, Begin and the pending list belong to the frame
// thread. The Request methods only talk to the network and may run in any
// goroutine; their result is handed back to the frame thread through Accept
// or Fail.
//
// # Half Turns
//
// A half turn plays as two chained quarter sweeps. When the service confirms
// a half turn with a single snapshot, the first sweep is backed by a locally
// computed guess and the second by the confirmed snapshot.
package cubeview
