// Package encoding writes small binary records through a strview.Segment and
// reads them back from a strview.View, without allocating.
//
// It is meant for the framing layer of firmware protocols: a caller owns one
// fixed buffer, builds a frame with the cursor pattern, and later parses the
// received frame with views that alias the receive buffer.
//
// # Record Formats
//
//   - Var string: [length:uvarint][bytes]
//   - Short string: [length:uint8][bytes], at most MaxTextLength bytes
//   - Fixed-width integers: 2, 4 or 8 bytes in the order of an
//     endian.EndianEngine
//   - Varints: unsigned LEB128 (uvarint) and zigzag signed varints, as
//     encoding/binary
//
// # Write Contract
//
// Unlike strview.Segment.Append, writers in this package are all-or-nothing: a
// record that does not fit is not written, the input segment is returned
// unchanged and the error wraps errs.ErrShortBuffer. A truncated length prefix
// would make the rest of the frame unreadable.
//
//	cursor := strview.NewSegment(frame[:])
//	cursor, err = encoding.AppendUint16(cursor, engine, msgType)
//	cursor, err = encoding.AppendVarString(cursor, strview.FromString("cpu.temp"))
//	payload := strview.NewSegment(frame[:]).Filled(cursor)
//
// # Read Contract
//
// Readers return the decoded value and the rest of the input. Truncated or
// malformed input is reported through strview.Invalid or a false ok value;
// readers never panic and never read past the view.
package encoding
