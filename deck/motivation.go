package deck

func (d *Deck) motivation() {
	d.list("- Enforcing Intention-Code 'strong coupling':", 2, []string{
		"New functionality works as intended.",
		"Backward-compatibility, and catching (unintended) breaking changes.",
		"Example-based documentation of intended usage.",
		"Continuous performance improvement monitoring.",
	}, d.theme.Main)
	d.next()

	d.list("- Automated tests?", 14, []string{
		"Usually unexpensive, testing small code entities.",
		"Automated => discourage frequent API changes.",
		"Easy to run in CI workflows.",
		"Special case: Porting/Refactoring code made safer with unit tests.",
	}, d.theme.Main)
	d.next()
}

func (d *Deck) whatToTest() {
	d.keepOnly()
	d.p.Play(d.retitle("1.1", "What OpenFOAM code to test?"))
	d.next()

	d.list("- Effective unit-testing takes:", 2, []string{
		"Writing test-friendly code in the first place.",
		"Prioritizing testing of Public Intefaces.",
		"Guarding against breaking changes in crucial external dependencies.",
	}, d.theme.Main)
	d.next()

	d.list("- Test-friendly code?", 12, []string{
		"Minimal interfacing with Disk IO, databases, external protocols ... etc.",
		"Private members should not be candidates for testing.",
		"Stable-enough APIs...",
		"Classes can be configured from outside code (code external to them).",
	}, d.theme.Main)
	d.next()
}

func (d *Deck) howToTest() {
	d.keepOnly()
	d.p.Play(d.retitle("1.2", "How to perform OpenFOAM code tests?"))
	d.next()

	d.list("- Isolation:", 2, []string{
		"Each class is tested in its default state (configuration).",
		"Dependencies for construction should be generated on-the-fly.",
		"Unit tests should not write to peripherals (disks, databases ... etc).",
		"Unit tests should throw exceptions...",
	}, d.theme.Main)
	d.next()

	d.list("- Production parity:", 13, []string{
		"Stay as close as possible to 'standard usage' of classes.",
		"Including the way their dependencies are built.",
		"And even compiler and linker settings.",
		"Eg. expect to dynamically load stuff? that's how you test them.",
	}, d.theme.Main)
	d.next()
}
