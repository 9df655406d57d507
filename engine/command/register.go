package command

// DefaultRegistry builds a registry carrying the full verb set wired
// to the given services.
func DefaultRegistry(svc *Services) *Registry {
	r := NewRegistry()
	for _, cmd := range []Command{
		NewLookCommand(svc),
		NewGoCommand(svc),
		NewTakeCommand(svc),
		NewDropCommand(svc),
		NewOpenCommand(svc),
		NewCloseCommand(svc),
		NewLockCommand(svc),
		NewUnlockCommand(svc),
		NewPutCommand(svc),
		NewLightCommand(svc),
		NewExtinguishCommand(svc),
		NewTurnCommand(svc),
		NewExamineCommand(svc),
		NewReadCommand(svc),
		NewMoveCommand(svc),
		NewInventoryCommand(svc),
		NewScoreCommand(svc),
		NewDiagnoseCommand(svc),
		NewWaitCommand(svc),
	} {
		r.Register(cmd)
	}
	return r
}
