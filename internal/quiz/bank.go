package quiz

import "github.com/depu2006/CareerGenomeai/internal/models"

func mcq(question, answer string, options ...string) models.MCQ {
	return models.MCQ{Question: question, Answer: answer, Options: options}
}

// curated questions served while the stored bank for a role is still empty
var staticBank = map[string][]models.MCQ{
	"frontend": {
		mcq("What is the primary benefit of the Virtual DOM in React?",
			"It minimizes expensive browser DOM manipulations by diffing a copy",
			"It directly updates the browser DOM for speed", "It minimizes expensive browser DOM manipulations by diffing a copy", "It replaces the need for CSS", "It handles server-side databases"),
		mcq("In CSS, what is the 'Box Model' composed of?",
			"Margin, Border, Padding, Content",
			"Margin, Border, Padding, Content", "Header, Footer, Main, Aside", "Color, Font, Size, Weight", "Select, Input, Button, Label"),
		mcq("Which hook is used to handle side effects in functional React components?",
			"useEffect",
			"useState", "useContext", "useEffect", "useReducer"),
		mcq("What does the 'asynchronous' nature of JavaScript mean?",
			"The engine can start long-running tasks and continue executing other code while waiting",
			"Code executes line by line and waits for completion", "Multiple blocks of code can run at the exact same time on one thread", "The engine can start long-running tasks and continue executing other code while waiting", "It only works on multi-core processors"),
		mcq("What is 'Closure' in JavaScript?",
			"A function combined with its lexical environment",
			"A function combined with its lexical environment", "A way to close the browser window", "A private class method", "The end of a loop"),
		mcq("Which React prop is used to pass data to child components?",
			"props",
			"state", "props", "ref", "context"),
		mcq("What does 'z-index' control in CSS?",
			"Stack order of overlapping elements",
			"Horizontal position", "Vertical position", "Stack order of overlapping elements", "Opacity level"),
		mcq("What is the purpose of 'key' prop in React lists?",
			"To uniquely identify items for efficient domestic re-rendering",
			"To style the elements", "To uniquely identify items for efficient domestic re-rendering", "To sort the list automatically", "To encrypt the data"),
	},
	"backend": {
		mcq("What is the primary purpose of a 'Middleware' in Express.js?",
			"To execute functions between the request and response cycle",
			"To store large binary files", "To act as a database", "To execute functions between the request and response cycle", "To create CSS layouts"),
		mcq("Which HTTP status code represents a 'Not Found' error?",
			"404",
			"200", "400", "404", "500"),
		mcq("What is the difference between SQL and NoSQL databases?",
			"SQL uses tables/schemas, NoSQL is often document/key-value based",
			"SQL is faster, NoSQL is more secure", "SQL uses tables/schemas, NoSQL is often document/key-value based", "SQL is for web, NoSQL is for mobile", "There is no difference"),
		mcq("What is 'REST' in the context of APIs?",
			"An architectural style for network-based applications",
			"A data encryption standard", "An architectural style for network-based applications", "A programming language for servers", "A database management system"),
		mcq("What does 'JWT' stand for in authentication?",
			"JSON Web Token",
			"Java Web Token", "JSON Web Token", "Joint Web Team", "Just With Text"),
		mcq("In Node.js, what is the 'Event Loop'?",
			"A mechanism that allows Node.js to perform non-blocking I/O operations",
			"A loop that handles UI clicks", "A mechanism that allows Node.js to perform non-blocking I/O operations", "A way to iterate over database results", "A security feature for preventing loops"),
	},
	"data science": {
		mcq("In Python, which library is primarily used for data manipulation and analysis using DataFrames?",
			"Pandas",
			"NumPy", "Pandas", "Matplotlib", "Scikit-learn"),
		mcq("What is 'Overfitting' in Machine Learning?",
			"When a model performs well on training data but poorly on unseen data",
			"When a model performs well on training data but poorly on unseen data", "When a model is too simple to capture patterns", "When the training data is too small", "When the model takes too long to train"),
		mcq("What does 'Correlation' measure between two variables?",
			"The linear relationship strength and direction",
			"The cause and effect relationship", "The linear relationship strength and direction", "The average value of both", "The total sum of variables"),
		mcq("Which visualization is best for showing the distribution of a single numerical variable?",
			"Histogram",
			"Scatter plot", "Histogram", "Line chart", "Heatmap"),
	},
	"ai/ml": {
		mcq("What does 'Transformer' architecture primarily depend on in NLP?",
			"Attention mechanisms",
			"Recurrent connections", "Convolutional layers", "Attention mechanisms", "Random forests"),
		mcq("Which activation function is most commonly used in hidden layers of Deep Neural Networks?",
			"ReLU",
			"Sigmoid", "Tanh", "ReLU", "Linear"),
		mcq("What is the purpose of 'Backpropagation'?",
			"To calculate gradients and update weights in a neural network",
			"To generate synthetic data", "To calculate gradients and update weights in a neural network", "To visualize the model architecture", "To stop the training early"),
	},
}

var defaultQuestion = mcq("What is the time complexity of Binary Search?", "O(log n)", "O(n)", "O(log n)", "O(n^2)", "O(1)")
