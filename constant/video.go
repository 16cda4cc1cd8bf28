package constant

// WatchURLPrefix is prepended to a video identifier to form its canonical URL.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// Fixed filenames used when neither flags, env nor the config file override them.
const (
	DefaultInput      = "youtube_channel.html"
	DefaultCSVOutput  = "youtube_videos.csv"
	DefaultJSONOutput = "youtube_videos.json"
)
