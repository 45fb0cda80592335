package compress

import "github.com/gaurav-prasanna/pdfpress/core"

// Search policy constants. Quality and scale back off geometrically
// between attempts and never drop below their floors.
const (
	maxAttempts  = 5
	qualityStep  = 0.7
	scaleStep    = 0.85
	qualityFloor = 0.1
	scaleFloor   = 0.3
)

// PassFunc runs one full compression pass with fixed parameters.
type PassFunc func(data []byte, p core.Params, cb core.ProgressFunc) ([]byte, error)

// CompressToTarget shrinks the document toward targetMB megabytes.
// Inputs already at or under the target are returned unchanged. The
// result is best-effort: after maxAttempts the last attempt's output
// is returned even if it is still over budget.
func CompressToTarget(data []byte, targetMB float64, cb core.ProgressFunc) ([]byte, error) {
	return searchToTarget(data, int(targetMB*1024*1024), New().Compress, cb)
}

// searchToTarget is the bounded search loop, with the single pass
// injected so the policy can be exercised without rendering.
func searchToTarget(data []byte, targetBytes int, pass PassFunc, cb core.ProgressFunc) ([]byte, error) {
	if len(data) <= targetBytes {
		return data, nil
	}

	params := initialParams(float64(targetBytes) / float64(len(data)))
	lastSize := len(data)

	var out []byte
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		cb.Emit(core.Progress{
			Stage:   core.StageCompressing,
			Current: attempt,
			Total:   maxAttempts,
			SizeMB:  core.BytesToMB(lastSize),
		})

		// Sub-events from the pass carry the in-progress size.
		sub := func(p core.Progress) {
			p.SizeMB = core.BytesToMB(lastSize)
			cb.Emit(p)
		}

		result, err := pass(data, params, sub)
		if err != nil {
			return nil, err
		}

		out = result
		lastSize = len(result)
		if lastSize <= targetBytes {
			return out, nil
		}

		params = backoff(params)
	}

	// Attempt budget exhausted: best effort, most recent output.
	return out, nil
}

// initialParams picks starting parameters from the compression ratio
// the search needs to achieve (target size / current size).
func initialParams(ratio float64) core.Params {
	switch {
	case ratio < 0.1:
		return core.Params{Quality: 0.20, Scale: 0.40}
	case ratio < 0.2:
		return core.Params{Quality: 0.30, Scale: 0.50}
	case ratio < 0.3:
		return core.Params{Quality: 0.40, Scale: 0.60}
	case ratio < 0.5:
		return core.Params{Quality: 0.50, Scale: 0.75}
	default:
		return core.Params{Quality: 0.70, Scale: 0.90}
	}
}

// backoff shrinks both parameters geometrically, clamped to the
// floors so late attempts never produce an unreadable page.
func backoff(p core.Params) core.Params {
	p.Quality *= qualityStep
	if p.Quality < qualityFloor {
		p.Quality = qualityFloor
	}
	p.Scale *= scaleStep
	if p.Scale < scaleFloor {
		p.Scale = scaleFloor
	}
	return p
}
