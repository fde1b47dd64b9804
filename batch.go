package sha256

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// HashAll hashes each message concurrently using at most workers goroutines
// and returns the digests in input order. If workers is not positive,
// GOMAXPROCS is used. The context is only consulted before a message is
// started; a message that has begun hashing always finishes.
func HashAll(ctx context.Context, msgs [][]byte, workers int) ([]Digest, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Digest, len(msgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range msgs {
		if gctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := hash(msgs[i])
			if err != nil {
				return errors.WithMessagef(err, "message %d", i)
			}
			out[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
