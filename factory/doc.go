// Package factory turns maze orders into finished mazes.
//
// An Order names a skill level (0–15), a builder.Method, whether the maze is
// perfect and a seed. The skill level picks the size and, for imperfect
// mazes, the number of rooms from SkillWidth, SkillHeight and SkillRooms.
//
// A Factory runs at most one order at a time:
//
//	f := factory.New()
//	ok, err := f.Order(factory.Order{SkillLevel: 3, Method: builder.MethodPrim}, recv)
//	// err: the order can never be built; !ok: the factory is busy.
//	f.WaitTillDelivered()
//
// The worker reports progress to the Receiver with strictly increasing values
// ending at 100, then calls Deliver exactly once. Cancel stops the job with
// no delivery unless Deliver has already been entered, in which case Cancel
// waits for it. Jobs that abort on an error call Fail when the Receiver
// implements Failer.
//
// With WithCache, identical orders reuse a stored floorplan. Caches that
// implement cache.Locker serialize generation of one order across processes.
//
// Generate runs the same pipeline synchronously.
package factory
