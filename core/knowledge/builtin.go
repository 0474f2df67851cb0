package knowledge

import (
	"sync"

	"tech-verdict/core/types"
)

// Default returns the built-in knowledge base. It is constructed on first use
// and shared afterwards.
var Default = sync.OnceValue(func() *Base {
	b := newBuilder()
	seedCompute(b)
	seedStorage(b)
	return b.build()
})

func attr(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

func tradeoff(benefit, cost string, confidence types.Confidence, source string) types.TradeOff {
	return types.TradeOff{Benefit: benefit, Cost: cost, Confidence: confidence, DataSource: source}
}

const (
	high   = types.ConfidenceHigh
	medium = types.ConfidenceMedium
)

func seedCompute(b *builder) {
	b.technology("lambda", "AWS Lambda",
		attr("cost", 0.9),
		attr("scalability", 0.95),
		attr("performance", 0.6),
		attr("learning_curve", 0.7),
		attr("operational_overhead", 0.95),
		attr("customization", 0.3),
		attr("cold_start", 0.4),
		attr("team_size_friendly", 0.9),
	).tradeoffs("AWS Lambda",
		tradeoff("Minimal operational overhead", "Cold starts ~500ms on first invocation", high, "AWS documentation"),
		tradeoff("Pay-per-use pricing", "Unpredictable costs at scale (>1M requests/month)", high, "AWS pricing calculator"),
		tradeoff("Automatic scaling", "Limited customization of runtime environment", high, "AWS Lambda limits"),
	).constraintTradeoff("AWS Lambda", types.CategoryBudget,
		tradeoff("No upfront infrastructure costs", "Costs scale with request volume (can exceed EC2 at high scale)", high, "AWS pricing calculator"),
	).constraintTradeoff("AWS Lambda", types.CategoryTeam,
		tradeoff("Minimal DevOps overhead for small teams", "Debugging and monitoring require specialized tools", medium, "Developer experience reports"),
	)

	b.technology("ec2", "AWS EC2",
		attr("cost", 0.4),
		attr("scalability", 0.7),
		attr("performance", 0.95),
		attr("learning_curve", 0.4),
		attr("operational_overhead", 0.2),
		attr("customization", 0.95),
		attr("cold_start", 1.0),
		attr("team_size_friendly", 0.3),
	).tradeoffs("AWS EC2",
		tradeoff("Full control and customization", "Requires manual scaling and ops management", high, "AWS best practices"),
		tradeoff("Predictable, always-on performance", "Higher baseline costs even at low utilization", high, "AWS pricing"),
		tradeoff("Stateful applications supported", "Requires team expertise in DevOps", high, "Industry standards"),
	).constraintTradeoff("AWS EC2", types.CategoryBudget,
		tradeoff("Predictable monthly costs", "High baseline cost even with low utilization", high, "AWS pricing"),
	).constraintTradeoff("AWS EC2", types.CategoryTeam,
		tradeoff("Full control for experienced teams", "Requires dedicated DevOps expertise", high, "Industry standards"),
	)

	b.technology("fargate", "AWS Fargate",
		attr("cost", 0.6),
		attr("scalability", 0.9),
		attr("performance", 0.85),
		attr("learning_curve", 0.5),
		attr("operational_overhead", 0.8),
		attr("customization", 0.7),
		attr("cold_start", 0.7),
		attr("team_size_friendly", 0.7),
	).tradeoffs("AWS Fargate",
		tradeoff("Container abstraction without server management", "Higher per-container costs than EC2", high, "AWS pricing comparison"),
		tradeoff("Automatic scaling with containers", "Less control than EC2, more than Lambda", medium, "AWS documentation"),
		tradeoff("Good for microservices", "Requires Docker/container knowledge", high, "Industry best practices"),
	).constraintTradeoff("AWS Fargate", types.CategoryBudget,
		tradeoff("Pay-per-container-second model", "More expensive than EC2 per unit, less than Lambda", high, "AWS pricing comparison"),
	).constraintTradeoff("AWS Fargate", types.CategoryTeam,
		tradeoff("Reduced infrastructure management", "Requires Docker and container orchestration knowledge", high, "AWS best practices"),
	)
}

func seedStorage(b *builder) {
	b.technology("postgresql", "PostgreSQL",
		attr("cost", 0.95),
		attr("scalability", 0.7),
		attr("performance", 0.85),
		attr("learning_curve", 0.6),
		attr("operational_overhead", 0.3),
		attr("customization", 0.95),
		attr("reliability", 0.95),
		attr("team_size_friendly", 0.7),
	).tradeoffs("PostgreSQL",
		tradeoff("Open-source, zero licensing costs", "Requires self-hosting or managed service costs", high, "PostgreSQL documentation"),
		tradeoff("ACID compliance and reliability", "Vertical scaling limits, horizontal scaling complex", high, "Database theory"),
		tradeoff("Rich query language and features", "Steeper learning curve than NoSQL", medium, "Developer surveys"),
	).constraintTradeoff("PostgreSQL", types.CategoryBudget,
		tradeoff("Open-source, no licensing fees", "Hosting and backup infrastructure costs", high, "PostgreSQL documentation"),
	).constraintTradeoff("PostgreSQL", types.CategoryScalability,
		tradeoff("Excellent for structured data", "Horizontal scaling requires sharding (complex)", high, "Database architecture"),
	)

	b.technology("mongodb", "MongoDB",
		attr("cost", 0.7),
		attr("scalability", 0.95),
		attr("performance", 0.8),
		attr("learning_curve", 0.8),
		attr("operational_overhead", 0.6),
		attr("customization", 0.8),
		attr("reliability", 0.7),
		attr("team_size_friendly", 0.8),
	).tradeoffs("MongoDB",
		tradeoff("Flexible schema and horizontal scaling", "Eventual consistency by default", high, "MongoDB documentation"),
		tradeoff("Easy to learn for developers", "Higher memory footprint than relational DBs", medium, "Performance benchmarks"),
		tradeoff("Great for rapid prototyping", "Data duplication and storage overhead", high, "MongoDB best practices"),
	).constraintTradeoff("MongoDB", types.CategoryScalability,
		tradeoff("Built-in horizontal scaling via sharding", "Increased operational complexity", high, "MongoDB documentation"),
	).constraintTradeoff("MongoDB", types.CategoryBudget,
		tradeoff("Open-source option available", "Atlas managed service can be expensive at scale", medium, "MongoDB pricing"),
	)

	b.technology("dynamodb", "DynamoDB",
		attr("cost", 0.5),
		attr("scalability", 0.99),
		attr("performance", 0.95),
		attr("learning_curve", 0.5),
		attr("operational_overhead", 0.95),
		attr("customization", 0.4),
		attr("reliability", 0.99),
		attr("team_size_friendly", 0.9),
	).tradeoffs("DynamoDB",
		tradeoff("Fully managed, automatic scaling", "Vendor lock-in to AWS", high, "AWS documentation"),
		tradeoff("Predictable performance at any scale", "Limited query flexibility (no complex joins)", high, "DynamoDB limits"),
		tradeoff("Pay-per-request pricing option", "Expensive for unpredictable workloads", medium, "AWS pricing"),
	).constraintTradeoff("DynamoDB", types.CategoryBudget,
		tradeoff("Fully managed, no infrastructure costs", "Pay-per-request can be expensive for unpredictable workloads", high, "AWS pricing calculator"),
	).constraintTradeoff("DynamoDB", types.CategoryScalability,
		tradeoff("Unlimited automatic scaling", "Limited query patterns (no complex joins)", high, "DynamoDB limits"),
	)
}
