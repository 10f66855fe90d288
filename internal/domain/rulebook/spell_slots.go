package rulebook

var fullCasterSlots = [20][9]int{
	{2},
	{3},
	{4, 2},
	{4, 3},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// paladins and rangers have no slots at level 1
var halfCasterSlots = [20][9]int{
	{},
	{2},
	{3},
	{3},
	{4, 2},
	{4, 2},
	{4, 3},
	{4, 3},
	{4, 3, 2},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2},
}

func slotRow(table [20][9]int, level int) [9]int {
	if level < 1 || level > 20 {
		return [9]int{}
	}
	return table[level-1]
}

// warlockSlots puts every pact slot at the warlock's single slot level
func warlockSlots(level int) [9]int {
	var slots [9]int
	switch {
	case level < 1 || level > 20:
	case level == 1:
		slots[0] = 1
	case level == 2:
		slots[0] = 2
	case level <= 4:
		slots[1] = 2
	case level <= 6:
		slots[2] = 2
	case level <= 8:
		slots[3] = 2
	case level <= 10:
		slots[4] = 2
	case level <= 16:
		slots[4] = 3
	default:
		slots[4] = 4
	}
	return slots
}
