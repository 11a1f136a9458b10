package cpu

// buildCycleCounts derives an approximate per-opcode cycle count from its
// addressing mode, for the TickFunc hook only. Spec explicitly treats
// cycle-exact timing as a non-goal ("the design names a cycle-cost hook
// but does not require cycle-exact pipelining"); this table exists so the
// hook has something plausible to report, not to reproduce the WDC
// datasheet's extra cycles for page-crossing or taken branches.
func buildCycleCounts() [256]int {
	var counts [256]int
	for i := range counts {
		counts[i] = cyclesForMode(opcodes[i].Mode, opcodes[i].Mnemonic)
	}
	return counts
}

func cyclesForMode(mode addrMode, mnemonic string) int {
	switch mnemonic {
	case "BRK":
		return 7
	case "JSR":
		return 6
	case "RTS", "RTI":
		return 6
	}
	switch mode {
	case modeImplied, modeAccumulator:
		return 2
	case modeImmediate, modeZeroPage, modeRelative:
		return 2
	case modeZeroPageX, modeZeroPageY, modeZeroPageIndirect, modeAbsolute:
		return 3
	case modeAbsoluteX, modeAbsoluteY, modeZeroPageIndirectIndexed:
		return 4
	case modeZeroPageIndexedIndirect:
		return 5
	case modeAbsoluteIndirect, modeAbsoluteIndexedIndirect:
		return 5
	case modeZeroPageRelative:
		return 5
	default:
		return 2
	}
}
