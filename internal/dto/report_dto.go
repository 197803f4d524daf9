package dto

type OverviewResponse struct {
	Leads     int64 `json:"leads"`
	Campaigns int64 `json:"campaigns"`
	Messages  int64 `json:"messages"`
	Files     int64 `json:"files"`
}

type BucketCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type BucketCountsResponse struct {
	Buckets []BucketCount `json:"buckets"`
}

type CampaignPerformance struct {
	CampaignID    string   `json:"campaign_id"`
	Name          string   `json:"name"`
	Status        string   `json:"status"`
	Budget        *float64 `json:"budget"`
	MessagesTotal int64    `json:"messages_total"`
	MessagesSent  int64    `json:"messages_sent"`
}

type CampaignPerformanceResponse struct {
	Campaigns []CampaignPerformance `json:"campaigns"`
}
