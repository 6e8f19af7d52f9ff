// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sansio runs protocol procedures without doing any I/O.
//
// A protocol procedure is a sequential computation on
// [code.hybscloud.com/kont] that describes how to consume and produce a byte
// stream. It suspends by performing one of three actions, and a [Driver]
// resumes it in response to explicit calls from whatever transport the
// caller owns: sockets, files or tests run the same procedure unchanged.
//
// # Architecture
//
//   - Buffering: [Buffer] is a segmented byte queue with zero-copy [Buffer.Peek] and [Buffer.Read] inside a chunk.
//   - Actions: [NeedInput], [NeedOutputBuffer] and [WaitEvent] are the only suspension points of a procedure.
//   - Driving: [Driver.Send], [Driver.Read] and [Driver.Result] pump the procedure; none of them block.
//   - Errors: procedures fail through the kont Error effect ([Fail]); the failure is returned from the call that resumed them.
//
// # API Topologies
//
//   - Primitives: [Peek], [Read], [Write], [Flush], [Wait].
//   - Cont-world: [PeekBind], [ReadBind], [WriteThen], [WaitThen], [Forever], [Loop].
//   - Expr-world: [ExprPeekBind], [ExprReadBind], [ExprWriteThen], [ExprFlushThen], [ExprWaitThen], [ExprForever].
//   - Construction: [New], [NewExpr], [Protocol], [ProtocolExpr].
//   - Adapters: [Splice] connects two drivers back to back; [Stream] exposes a driver as iox.Reader and iox.Writer.
//
// # Backpressure
//
// [Write] does not complete when its bytes are enqueued. It completes once
// a reader has drained the output buffer, so a procedure never runs ahead of
// its consumer by more than one write.
//
// # Example
//
//	echo := sansio.Protocol(func() kont.Eff[struct{}] {
//		return sansio.Forever[struct{}](func() kont.Eff[struct{}] {
//			return sansio.ReadBind(1, func(b []byte) kont.Eff[struct{}] {
//				return sansio.Write(b)
//			})
//		})
//	})
//	conn := echo()
//	_ = conn.Send([]byte("hi"))
//	out, _ := conn.Read(0) // "hi"
package sansio
