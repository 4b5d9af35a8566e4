package batch

import "context"

// Processor turns one inbox audio file into a transcript JSON file.
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}
