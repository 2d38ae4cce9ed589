// Package finance provides the core types and logic for a local-first
// personal finance tracker: income and expenses, fixed recurring bills,
// monthly budgets, investments, and third-party financial support, with
// summaries, insights and a unified timeline derived from that data.
//
// The core functionalities include:
//   - Record Store: a single aggregate holding every collection, mutated
//     through a narrow operation set and persisted as a whole on every change.
//   - Filter Engine: one global filter configuration (period, date range,
//     type, search, amount bounds) evaluated uniformly across views.
//   - Timeline Synthesizer: transactions, investment flows, support deposits
//     and projected future bills merged into one ordered event stream.
//   - Insights: stateless advisory heuristics computed from a state snapshot.
//   - Persistence: the whole state serialized as a single JSON document under
//     a fixed storage name, with import/export for backups.
//
// This package is the foundational logic for the `cofi` command-line tool;
// every view the tool renders is a pure recomputation from the store's state
// and the filter configuration.
package finance
