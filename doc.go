// Package pagereplace simulates classical page replacement policies
// over a fixed reference sequence and a fixed number of resident frames.
//
// [Run] processes the sequence one reference at a time and returns a [Result]
// holding a [Step] per reference, along with the total fault count.
// [Compare] runs every [Policy] over the same input.
//
// Glossary and invariants:
//
//   - Frame
//
//     A slot holding one resident page.
//
//   - Frame set
//
//     The resident pages, ordered by when they were faulted in.
//     Holds at most capacity pages and never holds a page twice.
//     Hits do not change this order; it is the order of [Step.Frames].
//
//   - Fault
//
//     A reference to a page that is not resident.
//     If the frame set is full, exactly one page is evicted
//     before the referenced page is inserted.
//
//   - Hit
//
//     A reference to a resident page. Membership does not change,
//     but the policy's own state may (LRU recency, LFU counts).
//
// Policies:
//
//   - [FIFO]
//
//     Evicts the page that was faulted in earliest.
//
//   - [LRU]
//
//     Evicts the page whose latest reference is furthest in the past.
//
//   - [LFU]
//
//     Evicts the page with the fewest references since it was faulted in.
//     Counts are dropped on eviction, so a page that returns starts at 1.
//     Ties go to the page that was faulted in earliest.
//
//   - [Optimal]
//
//     Evicts the page whose next reference is furthest in the future
//     (Belady's MIN). A page that is never referenced again
//     is preferred over any page that is.
//     Ties go to the page that was faulted in earliest.
//
// Runs share no state, so they may execute concurrently.
package pagereplace
