package htmlpdf

import "os"

// SampleFileName is the fixed file name used by the CLI's
// --create-sample mode.
const SampleFileName = "sample_report.html"

// WriteSample writes the demonstration HTML document to path,
// overwriting any existing file.
func WriteSample(path string) error {
	return os.WriteFile(path, []byte(SampleHTML), 0o644)
}

// SampleHTML is a self-contained demonstration document: a website
// audit report with embedded CSS, used to exercise a conversion end to
// end without any external input.
const SampleHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Sample Website Audit Report</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            margin: 0;
            padding: 20px;
            color: #333;
            background-color: #f9f9f9;
        }
        .container {
            max-width: 800px;
            margin: 0 auto;
            background: white;
            padding: 30px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 {
            color: #2c3e50;
            border-bottom: 3px solid #3498db;
            padding-bottom: 10px;
        }
        h2 {
            color: #34495e;
            margin-top: 30px;
        }
        .score {
            background: linear-gradient(45deg, #3498db, #2ecc71);
            color: white;
            padding: 20px;
            border-radius: 8px;
            text-align: center;
            margin: 20px 0;
        }
        .score h3 {
            margin: 0;
            font-size: 2em;
        }
        .metric {
            display: inline-block;
            background: #ecf0f1;
            padding: 15px;
            margin: 10px;
            border-radius: 5px;
            border-left: 4px solid #3498db;
        }
        .metric strong {
            color: #2c3e50;
        }
        .recommendations {
            background: #f8f9fa;
            padding: 20px;
            border-radius: 5px;
            border-left: 4px solid #e74c3c;
        }
        .recommendations li {
            margin-bottom: 8px;
        }
        @media print {
            body { background: white; }
            .container { box-shadow: none; }
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Website Audit Report</h1>
        <p><strong>URL:</strong> https://example.com</p>
        <p><strong>Generated:</strong> July 30, 2025</p>

        <div class="score">
            <h3>Overall Score: 85/100</h3>
            <p>Good performance with room for improvement</p>
        </div>

        <h2>Performance Metrics</h2>
        <div>
            <div class="metric">
                <strong>First Contentful Paint:</strong> 1.2s
            </div>
            <div class="metric">
                <strong>Largest Contentful Paint:</strong> 2.1s
            </div>
            <div class="metric">
                <strong>Cumulative Layout Shift:</strong> 0.05
            </div>
            <div class="metric">
                <strong>First Input Delay:</strong> 45ms
            </div>
        </div>

        <h2>SEO Analysis</h2>
        <ul>
            <li>PASS: Title tag present and optimized</li>
            <li>PASS: Meta description found</li>
            <li>WARN: Missing alt text on 3 images</li>
            <li>PASS: Proper heading structure (H1-H6)</li>
            <li>PASS: Mobile-friendly design</li>
        </ul>

        <h2>Security Assessment</h2>
        <ul>
            <li>PASS: HTTPS encryption enabled</li>
            <li>PASS: Security headers present</li>
            <li>WARN: Mixed content warnings detected</li>
            <li>PASS: No malware detected</li>
        </ul>

        <h2>Accessibility Score: 78/100</h2>
        <ul>
            <li>PASS: Proper color contrast ratios</li>
            <li>WARN: Some form elements missing labels</li>
            <li>PASS: Keyboard navigation supported</li>
            <li>WARN: Missing skip navigation links</li>
        </ul>

        <div class="recommendations">
            <h2>Priority Recommendations</h2>
            <ul>
                <li>Add alt text to all images for better accessibility and SEO</li>
                <li>Optimize images to reduce load times</li>
                <li>Fix mixed content warnings by ensuring all resources use HTTPS</li>
                <li>Add proper labels to form elements</li>
                <li>Implement skip navigation links for better accessibility</li>
                <li>Consider implementing a Content Security Policy</li>
            </ul>
        </div>

        <h2>Conversion Optimization</h2>
        <ul>
            <li>PASS: Clear call-to-action buttons</li>
            <li>PASS: Contact information easily accessible</li>
            <li>WARN: Forms could be simplified</li>
            <li>PASS: Trust signals present (testimonials, certifications)</li>
        </ul>

        <p style="text-align: center; margin-top: 40px; color: #7f8c8d;">
            <em>Report generated by Website Auditor Pro</em>
        </p>
    </div>
</body>
</html>
`
