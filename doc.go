// Package shardflow is the data-exchange fabric of a parallel dataflow
// runtime: it moves batches of records along dataflow edges between parallel
// workers according to a pluggable parallelization contract, and instruments
// every movement with sequence numbers, provenance, and structured trace
// events.
//
// A dataflow edge is configured with one contract. Pipeline hands batches
// straight from a producer to a consumer on the same worker; Exchange
// partitions records across all workers of a process by a caller-supplied
// hash of record content. Connecting a contract allocates a matched pair of
// push and pull endpoints from the worker runtime and wraps both in
// instrumentation; pushing transfers ownership of an envelope into the
// channel, pulling transfers it back out. No contract ever changes the
// number of records present at a logical timestamp; progress tracking in a
// surrounding runtime depends on that invariant.
//
// Trace events can be delivered to a structured logger (any Watermill
// LoggerAdapter or slog.Logger), to Prometheus counters, or to an
// OpenTelemetry span; see the events package. The transport/bridge package
// carries an edge across a process boundary over any Watermill transport.
//
// A minimal setup creates a worker.Process, connects contracts inside
// Process.Run, and pushes and pulls envelopes:
//
//	process := shardflow.NewProcess(2)
//	contract := shardflow.NewExchange[int](shardflow.HashString)
//	err := process.Run(ctx, func(ctx context.Context, w *shardflow.Worker) error {
//		push, pull := contract.Connect(w, 0, nil, sink)
//		...
//	})
package shardflow
