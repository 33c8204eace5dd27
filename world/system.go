package world

// System is one step of a tick. Systems may keep their own state between
// frames; structural changes to the Storage go through frame.Commands.
type System interface {
	Execute(frame *UpdateFrame)
}
