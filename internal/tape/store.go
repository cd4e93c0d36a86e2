package tape

import "context"

// Store persists recorded frames for later playback or analysis.
type Store interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, frame Frame) error
	Frame(ctx context.Context, generation uint64) (Frame, bool, error)
	Len(ctx context.Context) (int, error)
}

// CloseIfSupported closes stores that hold external resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
