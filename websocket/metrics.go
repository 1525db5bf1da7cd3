// Package websocket - websocket/metrics.go
// file: websocket/metrics.go
package websocket

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"academy-admin/logger"
)

// Namespace for all dashboard metrics
var metricsNamespace = "AcademyAdmin"

// Reuse a single CloudWatch client for all metrics calls
var cwClient = cloudwatch.New(session.Must(session.NewSession()))

// metricsEnabled gates publishing; tests leave it off.
var metricsEnabled = false

// EnableMetrics turns on CloudWatch publishing. Call from main when the
// process runs with AWS credentials.
func EnableMetrics() {
	metricsEnabled = true
}

// PublishDashboardConnections pushes the current dashboard client count.
func PublishDashboardConnections(count int) {
	putMetric("DashboardConnections", float64(count), "Count")
}

// PublishActivityBacklog pushes a gauge for broadcast queue depth.
func PublishActivityBacklog(depth int) {
	putMetric("ActivityQueueDepth", float64(depth), "Count")
}

func putMetric(metricName string, value float64, unit string) {
	if !metricsEnabled {
		return
	}

	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Timestamp:  aws.Time(time.Now()),
				Value:      aws.Float64(value),
				Unit:       aws.String(unit),
			},
		},
	})
	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
