package mock

import (
	"context"

	"github.com/kbaidoo/lawfinder"
)

var _ lawfinder.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of lawfinder.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, payload *lawfinder.OutputPayload) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, payload *lawfinder.OutputPayload) error {
	return w.WriteRecordFn(ctx, payload)
}
