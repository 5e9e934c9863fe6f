package phpdate

const (
	// 2024-01-01 00:00:00
	DateTime = "Y-m-d H:i:s"
	// 01-Jan-2023 00:00:00
	LogDateTime = "d-M-Y H:i:s"
	Date        = "Y-m-d"
	Time        = "H:i:s"
	// 2004-02-12T15:19:21+00:00
	ISO8601 = `Y-m-d\TH:i:sP`
	// Thu, 21 Dec 2000 16:01:07 +0200
	RFC2822 = "D, d M Y H:i:s O"
)
