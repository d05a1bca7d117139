package sus

// channelCount is the number of channels the format encodes, a single
// base-36 digit in the line tag.
const channelCount = 36

type interval struct {
	start, end int
}

// ChannelAllocator hands out the per category channels that keep
// overlapping note groups on the same lane apart. A channel becomes
// reusable once the group bound to it has ended. The zero value is an
// allocator with every channel free.
type ChannelAllocator struct {
	bound [channelCount]interval
	used  [channelCount]bool
}

// Generate binds the first free channel to [startTick, endTick] and
// returns its id. A channel is free when it has never been used or its
// bound interval does not overlap the requested one.
func (a *ChannelAllocator) Generate(startTick, endTick int) (int, error) {
	for id := range a.bound {
		if a.used[id] && endTick >= a.bound[id].start && a.bound[id].end >= startTick {
			continue
		}
		a.bound[id] = interval{start: startTick, end: endTick}
		a.used[id] = true
		return id, nil
	}
	return 0, &ResourceExhaustedError{Resource: "channels", Limit: channelCount}
}
