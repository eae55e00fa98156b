// Package pipeline drives values and interval sets through a resolved
// chain.Chain and reports the minimum value reachable at the terminal
// category.
//
// Modes
//
//   - Point mode (MinValue): every starting value is converted
//     independently; the smallest terminal value wins. With WithWorkers(n)
//     the values are split across n goroutines.
//   - Range mode (MinRange): the whole starting set is converted one stage
//     at a time as a single batch; the result is the smallest Start among
//     the final pieces. Each piece is relocated with slope 1, so its Start
//     is its smallest covered value and no point is ever enumerated.
//
// Options
//
//   - WithLogger(l):   zap logger for per-stage debug lines and run summaries.
//   - WithWorkers(n):  parallelism for point mode (n ≥ 1, default 1).
//   - WithOnStage(fn): hook called after each range-mode stage with the
//     piece count of the new set.
//
// Errors
//
//   - ErrNilChain         if New receives no chain.
//   - ErrEmptyResult      if there is nothing to take a minimum over.
//   - ErrOptionViolation  for invalid options.
//   - ctx.Err()           if the context is cancelled mid-run.
package pipeline
