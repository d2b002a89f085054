package core

// AdvanceTimer 时间减少一帧，返回是否耗尽
func AdvanceTimer(s *State) bool {
	s.timeLeft--
	return s.timeLeft <= 0
}
