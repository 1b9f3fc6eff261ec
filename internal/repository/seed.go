package repository

import (
	"time"

	"github.com/skolyn/backend/internal/model"
)

// SeedPosts returns the sample posts inserted into an empty blog so the
// resources page never renders an empty state. Each call returns a fresh copy.
func SeedPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			SeedKey:     "future-explainable-ai-medical-imaging",
			Title:       "The Future of Explainable AI in Medical Imaging",
			Excerpt:     "Exploring how transparent AI systems are revolutionizing diagnostic confidence and patient outcomes in radiology departments worldwide.",
			Content:     xaiPostContent,
			Author:      "Dr. Sarah Chen",
			AuthorRole:  "Chief Medical Officer",
			PublishedAt: time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			Category:    "AI Technology",
			Tags:        []string{"XAI", "Medical Imaging", "Deep Learning"},
			Featured:    true,
			Slug:        "future-explainable-ai-medical-imaging",
			ReadTime:    "8 min read",
			CreatedAt:   time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			SeedKey:     "reducing-radiologist-burnout-ai-assistance",
			Title:       "Reducing Radiologist Burnout with AI Assistance",
			Excerpt:     "How AI-powered diagnostic tools are helping radiologists manage increasing workloads while maintaining diagnostic accuracy and job satisfaction.",
			Content:     burnoutPostContent,
			Author:      "Dr. Michael Rodriguez",
			AuthorRole:  "Radiology Director",
			PublishedAt: time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
			Category:    "Workforce",
			Tags:        []string{"Burnout", "Workflow", "Radiology"},
			Featured:    false,
			Slug:        "reducing-radiologist-burnout-ai-assistance",
			ReadTime:    "6 min read",
			CreatedAt:   time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

const xaiPostContent = `
<p>The healthcare industry is experiencing a paradigm shift with the introduction of Explainable AI (XAI) in medical imaging. Unlike traditional "black box" AI systems, XAI provides clear, interpretable insights into how diagnostic decisions are made.</p>

<h2>Why Explainability Matters in Healthcare</h2>
<p>In medical diagnostics, understanding the "why" behind an AI's decision is crucial for several reasons:</p>
<ul>
  <li>Building trust between AI systems and healthcare professionals</li>
  <li>Enabling validation of AI findings against clinical expertise</li>
  <li>Supporting regulatory compliance and quality assurance</li>
  <li>Facilitating continuous learning and improvement</li>
</ul>

<h2>The Technology Behind XAI</h2>
<p>Modern XAI systems in medical imaging primarily use techniques like Gradient-weighted Class Activation Mapping (Grad-CAM) to highlight regions of interest in medical images. These visualizations show exactly where the AI model is "looking" when making diagnostic decisions.</p>

<h2>Clinical Impact</h2>
<p>Studies have shown that XAI systems not only maintain high diagnostic accuracy but also improve radiologist confidence and reduce time to diagnosis. The transparency allows for better integration into clinical workflows and supports better patient outcomes.</p>
`

const burnoutPostContent = `
<p>Radiologist burnout has reached critical levels, with studies showing that over 70% of radiologists report symptoms of burnout. The COVID-19 pandemic has only exacerbated this issue, leading to increased case volumes and staffing shortages.</p>

<h2>The Burnout Crisis in Radiology</h2>
<p>Several factors contribute to radiologist burnout:</p>
<ul>
  <li>Overwhelming case volumes with limited time for interpretation</li>
  <li>Increasing complexity of imaging studies</li>
  <li>Pressure to reduce turnaround times</li>
  <li>Administrative burdens and documentation requirements</li>
</ul>

<h2>AI as a Solution</h2>
<p>AI diagnostic tools can address these challenges by:</p>
<ul>
  <li>Automating routine screenings and flagging abnormalities</li>
  <li>Prioritizing urgent cases requiring immediate attention</li>
  <li>Reducing time spent on repetitive tasks</li>
  <li>Providing decision support for complex cases</li>
</ul>

<h2>Real-World Results</h2>
<p>Hospitals implementing AI diagnostic tools have reported significant improvements in radiologist satisfaction, with many experiencing reduced overtime hours and improved work-life balance.</p>
`
