package watchdog

import "github.com/sgostarter/libchart/live"

// WatchStream touches dog on every append to stream.
func WatchStream(stream live.Stream, dog WatchDog) live.Stream {
	if dog == nil {
		dog = NewNopWatchDog()
	}

	return &watchedStream{
		Stream: stream,
		dog:    dog,
	}
}

type watchedStream struct {
	live.Stream

	dog WatchDog
}

func (ws *watchedStream) Append(points ...live.Point) {
	ws.Stream.Append(points...)

	if len(points) > 0 {
		ws.dog.Touch()
	}
}
