package utils

// Overlap 判断两个轴对齐矩形是否相交，(x, y) 为左上角，边界相接不算相交
func Overlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1+w1 > x2 && x1 < x2+w2 &&
		y1+h1 > y2 && y1 < y2+h2
}
