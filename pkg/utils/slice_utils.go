package utils

// ExcludeByID 返回 items 中 id 不在 exclude 里的元素，保持原有顺序
func ExcludeByID[T any](items []T, exclude []int64, idOf func(T) int64) []T {
	skip := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := skip[idOf(item)]; ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// IDsOf 提取元素的 id
func IDsOf[T any](items []T, idOf func(T) int64) []int64 {
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = idOf(item)
	}
	return ids
}
